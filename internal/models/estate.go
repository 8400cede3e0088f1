package models

import "dmbookAdmin/internal/docstore"

// EstateWithOwner pairs an estate document with its owner's user document.
type EstateWithOwner struct {
	Category string            `json:"-"`
	Estate   docstore.Snapshot `json:"estate"`
	Provider docstore.Snapshot `json:"provider"`
}

// ProviderListing is an accepted estate as shown in the providers list.
type ProviderListing struct {
	ID               string      `json:"id"`
	CompanyName      string      `json:"companyName"`
	Email            string      `json:"email"`
	Phone            string      `json:"phone"`
	Logo             string      `json:"logo"`
	Type             string      `json:"type"`
	Industry         string      `json:"industry"`
	AccountType      interface{} `json:"accountType"`
	ProviderName     string      `json:"providerName"`
	City             string      `json:"city"`
	Country          string      `json:"country"`
	FacilityImageURL string      `json:"facilityImageUrl"`
}

func NewProviderListing(id string, estate, owner Record) ProviderListing {
	return ProviderListing{
		ID:               id,
		CompanyName:      estate.Text(DefaultCompany, "NameEn"),
		Email:            owner.Text(DefaultEmail, "Email"),
		Phone:            owner.Text(DefaultPhone, "PhoneNumber"),
		Logo:             owner.Text(DefaultLogo, "ProfileImageUrl"),
		Type:             estate.Text(DefaultType, "Type"),
		Industry:         estate.Text(DefaultIndustry, "BioEn", "BioAr"),
		AccountType:      estate.Or("TypeAccount", DefaultAccountType),
		ProviderName:     estate.Text(DefaultProviderName, OwnerNameField),
		City:             estate.Text(DefaultCity, "City"),
		Country:          estate.Text(DefaultCountry, "Country"),
		FacilityImageURL: estate.Text(DefaultFacilityImage, "FacilityImageUrl"),
	}
}

// PendingEstate is an estate awaiting review, with the extended field set the
// review screen needs.
type PendingEstate struct {
	ID               string      `json:"id"`
	CompanyName      string      `json:"companyName"`
	Email            string      `json:"email"`
	Phone            string      `json:"phone"`
	AgentCode        string      `json:"agentCode"`
	Logo             string      `json:"logo"`
	Type             string      `json:"type"`
	Industry         string      `json:"industry"`
	AccountType      interface{} `json:"accountType"`
	ProviderName     string      `json:"providerName"`
	City             string      `json:"city"`
	Country          string      `json:"country"`
	State            string      `json:"state"`
	FacilityPdfURL   string      `json:"facilityPdfUrl"`
	TaxPdfURL        string      `json:"taxPdfUrl"`
	Price            interface{} `json:"price"`
	PriceLast        interface{} `json:"priceLast"`
	HasKidsArea      YesNo       `json:"hasKidsArea"`
	HasMassage       YesNo       `json:"hasMassage"`
	HasSwimmingPool  YesNo       `json:"hasSwimmingPool"`
	HasValet         YesNo       `json:"hasValet"`
	ValetWithFees    YesNo       `json:"valetWithFees"`
	Latitude         interface{} `json:"latitude"`
	Longitude        interface{} `json:"longitude"`
	MenuLink         string      `json:"menuLink"`
	Music            YesNo       `json:"music"`
	Sessions         string      `json:"sessions"`
	TypeofRestaurant string      `json:"typeofRestaurant"`
	HasBarber        YesNo       `json:"hasBarber"`
	HasGym           YesNo       `json:"hasGym"`
}

func NewPendingEstate(id string, estate, owner Record) PendingEstate {
	return PendingEstate{
		ID:               id,
		CompanyName:      estate.Text(DefaultCompany, "NameEn"),
		Email:            owner.Text(DefaultEmail, "Email"),
		Phone:            owner.Text(DefaultPhone, "PhoneNumber"),
		AgentCode:        owner.Text(DefaultAgentCode, "AgentCode"),
		Logo:             owner.Text(DefaultLogo, "ProfileImageUrl"),
		Type:             estate.Text(DefaultType, "Type"),
		Industry:         estate.Text(DefaultIndustry, "BioEn", "BioAr"),
		AccountType:      estate.Or("TypeAccount", DefaultAccountType),
		ProviderName:     estate.Text(DefaultProviderName, OwnerNameField),
		City:             estate.Text(DefaultCity, "City"),
		Country:          estate.Text(DefaultCountry, "Country"),
		State:            estate.Text(DefaultState, "State"),
		FacilityPdfURL:   estate.Text(DefaultFacilityPdf, "FacilityPdfUrl"),
		TaxPdfURL:        estate.Text(DefaultTaxPdf, "TaxPdfUrl"),
		Price:            estate.Or("Price", DefaultUnknown),
		PriceLast:        estate.Or("PriceLast", DefaultUnknown),
		HasKidsArea:      estate.Flag("HasKidsArea"),
		HasMassage:       estate.Flag("HasMassage"),
		HasSwimmingPool:  estate.Flag("HasSwimmingPool"),
		HasValet:         estate.Flag("HasValet"),
		ValetWithFees:    estate.Flag("ValetWithFees"),
		Latitude:         estate.Or("Lat", DefaultUnknown),
		Longitude:        estate.Or("Lon", DefaultUnknown),
		MenuLink:         estate.Text(DefaultUnknown, "MenuLink"),
		Music:            estate.Flag("Music"),
		Sessions:         estate.Text(DefaultSessions, "Sessions"),
		TypeofRestaurant: estate.Text(DefaultUnknown, "TypeofRestaurant"),
		HasBarber:        estate.Flag("HasBarber"),
		HasGym:           estate.Flag("HasGym"),
	}
}

// ProviderEstate is an estate summary on a provider profile.
type ProviderEstate struct {
	ID           string `json:"id"`
	CompanyName  string `json:"companyName"`
	Industry     string `json:"industry"`
	Type         string `json:"type"`
	ProviderName string `json:"providerName"`
}

func NewProviderEstate(id string, estate Record) ProviderEstate {
	return ProviderEstate{
		ID:           id,
		CompanyName:  estate.Text(DefaultCompany, "NameEn"),
		Industry:     estate.Text(DefaultIndustry, "BioEn", "BioAr"),
		Type:         estate.Text(DefaultType, "Type"),
		ProviderName: estate.Text(DefaultProviderName, OwnerNameField),
	}
}

// EstateDecision is the outcome of an accept or reject request.
type EstateDecision struct {
	Message    string      `json:"message"`
	IsAccepted EstateState `json:"IsAccepted,omitempty"`
}
