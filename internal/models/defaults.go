package models

// Placeholder literals returned instead of missing values. Admin panel
// clients match on these strings, so they are part of the wire format.
const (
	DefaultUnknown          = "Unknown"
	DefaultNA               = "N/A"
	DefaultNetTotal         = "0.0"
	DefaultEmail            = "No Email"
	DefaultPhone            = "No Phone"
	DefaultLogo             = "https://via.placeholder.com/100"
	DefaultEstateImage      = "https://via.placeholder.com/150"
	DefaultCompany          = "Unknown Company"
	DefaultIndustry         = "Unknown Industry"
	DefaultType             = "Unknown Type"
	DefaultAccountType      = "Unknown Account Type"
	DefaultProviderName     = "Unknown Provider"
	DefaultCity             = "Unknown City"
	DefaultCountry          = "Unknown Country"
	DefaultState            = "Unknown State"
	DefaultFacilityImage    = "No Image Available"
	DefaultAgentCode        = "no AgentCode"
	DefaultFacilityPdf      = "No facilityPdfUrl"
	DefaultTaxPdf           = "No TaxPdfUrl"
	DefaultSessions         = "Unknown Sessions"
	DefaultEstateName       = "Unknown Estate"
	DefaultAuthor           = "Anonymous"
	DefaultFeedbackText     = "No feedback provided"
	DefaultCustomerName     = "Unknown Customer"
	DefaultRatingEstateID   = "Unknown Estate ID"
	DefaultRatingEstateName = "Unknown Estate Name"
	DefaultRatingComment    = "No comment provided"
	DefaultRatingTimestamp  = "Invalid Date"
	OwnerNameField          = "Owner of Estate Name"
)
