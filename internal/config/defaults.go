package config

// Built-in defaults.
const (
	DefaultDatabasePath = "/usr/local/var/yomu/jmdict.db"
	DefaultCacheSize    = 4096
	DefaultDictionary   = "ipa"
	DefaultPageSize     = 1000
	DefaultMaxPageSize  = 100000
)

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Storage.DatabasePath == "" {
		cfg.Storage.DatabasePath = DefaultDatabasePath
	}
	if cfg.Storage.CacheSize == 0 {
		cfg.Storage.CacheSize = DefaultCacheSize
	}
	if cfg.Segmenter.Dictionary == "" {
		cfg.Segmenter.Dictionary = DefaultDictionary
	}
	if cfg.Annotate.DefaultPageSize == 0 {
		cfg.Annotate.DefaultPageSize = DefaultPageSize
	}
	if cfg.Annotate.MaxPageSize == 0 {
		cfg.Annotate.MaxPageSize = DefaultMaxPageSize
	}
}
