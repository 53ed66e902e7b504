package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/ionut-t/folio/internal/menu"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const rootDir = ".folio"
const configFileName = "config.toml"
const logFileName = "folio.log"

const (
	EditorKey        = "editor"
	LanguageKey      = "language"
	DebugMenuKey     = "debug_menu"
	DefaultZoomKey   = "default_zoom"
	DefaultLayoutKey = "default_layout"
	LeaderKeyKey     = "leader_key"
	LogLevelKey      = "log_level"
	LogFileKey       = "log_file"
	DenyKey          = "deny"
)

// Keys lists every setting in the order the config command prints them.
var Keys = []string{
	EditorKey,
	LanguageKey,
	DebugMenuKey,
	DefaultZoomKey,
	DefaultLayoutKey,
	LeaderKeyKey,
	LogLevelKey,
	LogFileKey,
	DenyKey,
}

// Permission names accepted in the deny list.
const (
	PermissionDisk      = "disk"
	PermissionPrint     = "print"
	PermissionClipboard = "clipboard"
)

var permissions = map[string]menu.Flags{
	PermissionDisk:      menu.FlagNeedsDisk,
	PermissionPrint:     menu.FlagNeedsPrinter,
	PermissionClipboard: menu.FlagNeedsClipboard,
}

func init() {
	setDefaults()
}

func setDefaults() {
	viper.SetDefault(LanguageKey, "en")
	viper.SetDefault(DebugMenuKey, false)
	viper.SetDefault(DefaultZoomKey, menu.FitPage.String())
	viper.SetDefault(DefaultLayoutKey, menu.LayoutSinglePage.String())
	viper.SetDefault(LeaderKeyKey, " ")
	viper.SetDefault(LogLevelKey, "info")
	viper.SetDefault(DenyKey, []string{})
}

func getDefaultEditor() string {
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}

	if os.Getenv("WINDIR") != "" {
		return "notepad"
	}

	return "vim"
}

func GetEditor() string {
	editor := viper.GetString(EditorKey)

	if editor == "" {
		return getDefaultEditor()
	}

	return editor
}

func SetEditor(editor string) error {
	if editor == GetEditor() {
		return nil
	}

	return Set(EditorKey, editor)
}

// Set validates value for key and writes it to the config file.
func Set(key string, value any) error {
	if err := validate(key, value); err != nil {
		return err
	}

	if _, err := InitialiseConfigFile(); err != nil {
		return err
	}

	viper.Set(key, value)

	return viper.WriteConfig()
}

func validate(key string, value any) error {
	switch key {
	case DefaultZoomKey:
		_, err := menu.ParseZoom(fmt.Sprint(value))
		return err
	case DefaultLayoutKey:
		_, err := menu.ParseLayout(fmt.Sprint(value))
		return err
	case DenyKey:
		list, ok := value.([]string)
		if !ok {
			return fmt.Errorf("%s must be a list", key)
		}
		for _, p := range list {
			if _, ok := permissions[p]; !ok {
				return fmt.Errorf("unknown permission %q", p)
			}
		}
	case LogLevelKey:
		switch fmt.Sprint(value) {
		case "debug", "info", "warn", "error":
		default:
			return fmt.Errorf("invalid log level %q", value)
		}
	}

	if !slices.Contains(Keys, key) {
		return fmt.Errorf("unknown config key %q", key)
	}

	return nil
}

func GetLanguage() string {
	return viper.GetString(LanguageKey)
}

// DebugMenu reports whether the debug menu was enabled in a release build.
func DebugMenu() bool {
	return viper.GetBool(DebugMenuKey)
}

// GetDefaultZoom returns the zoom new windows open with. Invalid values fall
// back to fit page.
func GetDefaultZoom() menu.Zoom {
	z, err := menu.ParseZoom(viper.GetString(DefaultZoomKey))
	if err != nil {
		return menu.FitPage
	}
	return z
}

// GetDefaultLayout returns the layout new windows open with. Invalid values
// fall back to single page.
func GetDefaultLayout() menu.Layout {
	l, err := menu.ParseLayout(viper.GetString(DefaultLayoutKey))
	if err != nil {
		return menu.LayoutSinglePage
	}
	return l
}

func GetLeaderKey() string {
	key := viper.GetString(LeaderKeyKey)
	if key == "" || strings.EqualFold(key, "space") {
		return " "
	}
	return key
}

func GetLogLevel() string {
	return viper.GetString(LogLevelKey)
}

// GetLogFile returns the log file path, defaulting to folio.log in the
// storage directory.
func GetLogFile() (string, error) {
	if path := viper.GetString(LogFileKey); path != "" {
		return homedir.Expand(path)
	}

	dir, err := GetStorage()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, logFileName), nil
}

// Permissions returns every FlagNeeds* bit not named in the deny list.
func Permissions() menu.Flags {
	flags := menu.AllPermissions

	for _, name := range viper.GetStringSlice(DenyKey) {
		flags &^= permissions[strings.ToLower(strings.TrimSpace(name))]
	}

	return flags
}

func InitialiseConfigFile() (string, error) {
	configPath := viper.ConfigFileUsed()

	if configPath == "" {
		dir, err := GetStorage()
		if err != nil {
			return "", err
		}

		configPath = filepath.Join(dir, configFileName)
		viper.SetConfigFile(configPath)

		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			viper.SetDefault(EditorKey, GetEditor())

			if err := viper.WriteConfig(); err != nil {
				return "", err
			}
		} else {
			_ = viper.ReadInConfig()
		}
	}

	return configPath, nil
}

func GetConfigFilePath() string {
	return viper.ConfigFileUsed()
}

// GetStorage returns the folio directory under the home directory, creating
// it when missing.
func GetStorage() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(home, rootDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	return dir, nil
}

// Watch calls fn after every change to the config file.
func Watch(fn func()) {
	viper.OnConfigChange(func(fsnotify.Event) {
		fn()
	})
	viper.WatchConfig()
}
