package docstore

import (
	"context"
	"errors"
	"fmt"

	"firebase.google.com/go/db"
	"github.com/google/uuid"
)

// Firebase is a Store backed by the Firebase Realtime Database admin client.
type Firebase struct {
	client *db.Client
}

func NewFirebase(client *db.Client) *Firebase {
	return &Firebase{client: client}
}

func (f *Firebase) Read(ctx context.Context, path string) (Snapshot, error) {
	var v interface{}
	if err := f.client.NewRef(Join(path)).Get(ctx, &v); err != nil {
		return Snapshot{}, fmt.Errorf("firebase read %s: %w", path, err)
	}
	return NewSnapshot(Base(path), NodeOf(v)), nil
}

func (f *Firebase) Update(ctx context.Context, path string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return errors.New("docstore: update needs at least one field")
	}
	if err := f.client.NewRef(Join(path)).Update(ctx, fields); err != nil {
		return fmt.Errorf("firebase update %s: %w", path, err)
	}
	return nil
}

func (f *Firebase) Delete(ctx context.Context, path string) error {
	if err := f.client.NewRef(Join(path)).Delete(ctx); err != nil {
		return fmt.Errorf("firebase delete %s: %w", path, err)
	}
	return nil
}

// GenerateKey returns a time ordered id. The admin SDK only hands out push
// keys together with a write, so the key is minted locally.
func (f *Firebase) GenerateKey(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
