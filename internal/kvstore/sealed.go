package kvstore

import (
	"context"
	"encoding/json"
	"fmt"
)

// Sealer encrypts and decrypts serialized values. config.Cipher satisfies it.
type Sealer interface {
	Encrypt(text string) (string, error)
	Decrypt(encoded string) (string, error)
}

// SealedStore encrypts values before handing them to the wrapped store.
type SealedStore struct {
	inner  Store
	sealer Sealer
}

func NewSealedStore(inner Store, sealer Sealer) *SealedStore {
	return &SealedStore{inner: inner, sealer: sealer}
}

func (s *SealedStore) Get(ctx context.Context, key string, dst any) (bool, error) {
	var sealed string
	ok, err := s.inner.Get(ctx, key, &sealed)
	if err != nil || !ok {
		return ok, err
	}
	plain, err := s.sealer.Decrypt(sealed)
	if err != nil {
		return false, fmt.Errorf("decrypt %q: %w", key, err)
	}
	if err := json.Unmarshal([]byte(plain), dst); err != nil {
		return false, err
	}
	return true, nil
}

func (s *SealedStore) Set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	sealed, err := s.sealer.Encrypt(string(raw))
	if err != nil {
		return fmt.Errorf("encrypt %q: %w", key, err)
	}
	return s.inner.Set(ctx, key, sealed)
}
