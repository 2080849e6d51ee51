package config

import (
	"fmt"

	supa "github.com/supabase-community/supabase-go"
)

// NewSupabaseClient connects the Supabase SDK with the configured project
// and key. Its From method is what the query client runs on.
func NewSupabaseClient(s Settings) (*supa.Client, error) {
	client, err := supa.NewClient(s.SupabaseURL, s.SupabaseKey, nil)
	if err != nil {
		return nil, fmt.Errorf("initializing Supabase client: %w", err)
	}
	if Log != nil {
		Log.WithField("supabase_url", s.SupabaseURL).Info("Supabase client initialized")
	}
	return client, nil
}

// StorageURL is the base URL of the project's public storage objects.
func (s Settings) StorageURL() string {
	return s.SupabaseURL + "/storage/v1/object/public"
}
