package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a sentinel error naming the
// first invalid configuration group otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Auth.TokenSignKey == "" || cfg.Auth.TokenDuration <= 0 || cfg.Auth.VerificationTokenTTL <= 0 {
		return ErrInvalidAuthConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Mail.From == "" || cfg.Mail.VerifyLinkBase == "" || cfg.Mail.QueueSize <= 0 || cfg.Mail.MaxAttempts <= 0 {
		return ErrInvalidMailConfigs
	}

	return nil
}
