package config

import "relparse/internal/release"

const (
	defaultConfigPath    = "~/.config/relparse/config.toml"
	projectConfigName    = "relparse.toml"
	defaultDataDir       = "~/.local/share/relparse"
	defaultLogDir        = "~/.local/share/relparse/logs"
	defaultIndexFile     = "library.db"
	defaultScanWorkers   = 4
	defaultServerBind    = "127.0.0.1:7488"
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
	defaultLogMaxSizeMB  = 20
	defaultLogMaxBackups = 5
	defaultLogMaxAgeDays = 30
)

var defaultScanExtensions = []string{".mkv", ".mp4", ".avi", ".m4v", ".mov", ".wmv", ".ts", ".webm"}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Parser: Parser{
			DefaultKind:    string(release.KindMovie),
			MaxBareSeason:  release.DefaultMaxBareSeason,
			MaxBareEpisode: release.DefaultMaxBareEpisode,
			MaxEpisodeSpan: release.DefaultMaxEpisodeSpan,
			MinYear:        release.DefaultMinYear,
			MaxYear:        release.DefaultMaxYear,
		},
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		Scan: Scan{
			Workers:    defaultScanWorkers,
			Extensions: append([]string(nil), defaultScanExtensions...),
		},
		Server: Server{
			Bind: defaultServerBind,
		},
		Logging: Logging{
			Format:     defaultLogFormat,
			Level:      defaultLogLevel,
			MaxSizeMB:  defaultLogMaxSizeMB,
			MaxBackups: defaultLogMaxBackups,
			MaxAgeDays: defaultLogMaxAgeDays,
		},
	}
}
