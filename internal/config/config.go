package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type EditorOptions struct {
	TabStop     int    `toml:"tab-stop"`
	QuitTimes   int    `toml:"quit-times"`
	CloseTimes  int    `toml:"close-times"`
	MsgBarLife  int    `toml:"msg-bar-life"`
	LineNumbers string `toml:"line-numbers"`
}

type Theme struct {
	Foreground           string `toml:"foreground"`
	Background           string `toml:"background"`
	StatusBarForeground  string `toml:"status-bar-foreground"`
	StatusBarBackground  string `toml:"status-bar-background"`
	LineNumberForeground string `toml:"line-number-foreground"`
	SelectionForeground  string `toml:"selection-foreground"`
	SelectionBackground  string `toml:"selection-background"`
	MatchForeground      string `toml:"match-foreground"`
	MatchBackground      string `toml:"match-background"`
	SyntaxNumber         string `toml:"syntax-number"`
	SyntaxString         string `toml:"syntax-string"`
	SyntaxComment        string `toml:"syntax-comment"`
	SyntaxKeyword        string `toml:"syntax-keyword"`
	SyntaxFlowword       string `toml:"syntax-flowword"`
	SyntaxType           string `toml:"syntax-type"`
	SyntaxMetaword       string `toml:"syntax-metaword"`
	SyntaxIdent          string `toml:"syntax-ident"`
	SyntaxFunction       string `toml:"syntax-function"`
	SyntaxPath           string `toml:"syntax-path"`
}

type Config struct {
	Editor EditorOptions `toml:"editor"`
	Theme  Theme         `toml:"theme"`
}

func Default() Config {
	return Config{
		Editor: EditorOptions{
			TabStop:     4,
			QuitTimes:   2,
			CloseTimes:  2,
			MsgBarLife:  5,
			LineNumbers: "absolute",
		},
		Theme: Theme{
			Foreground:           "#B3B1AD",
			Background:           "#0A0E14",
			StatusBarForeground:  "#B3B1AD",
			StatusBarBackground:  "#0F1419",
			LineNumberForeground: "#3E4B59",
			SelectionForeground:  "#B3B1AD",
			SelectionBackground:  "#27425A",
			MatchForeground:      "#000000",
			MatchBackground:      "#FFD700",
			SyntaxNumber:         "#D4BFFF",
			SyntaxString:         "#BAE67E",
			SyntaxComment:        "#5C6773",
			SyntaxKeyword:        "#FFA759",
			SyntaxFlowword:       "#F28779",
			SyntaxType:           "#5CCFE6",
			SyntaxMetaword:       "#73D0FF",
			SyntaxIdent:          "#B3B1AD",
			SyntaxFunction:       "#FFD173",
			SyntaxPath:           "#E6B673",
		},
	}
}

// Load reads config.toml from the config directory and merges it over the
// defaults. A missing file is not an error; a malformed one is, with the
// defaults returned so the caller can still run.
func Load() (Config, error) {
	cfg := Default()
	path, err := ConfigPath()
	if err != nil {
		return cfg, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	var userCfg Config
	if _, err := toml.Decode(string(data), &userCfg); err != nil {
		return cfg, err
	}

	if userCfg.Editor.TabStop > 0 {
		cfg.Editor.TabStop = userCfg.Editor.TabStop
	}
	if userCfg.Editor.QuitTimes > 0 {
		cfg.Editor.QuitTimes = userCfg.Editor.QuitTimes
	}
	if userCfg.Editor.CloseTimes > 0 {
		cfg.Editor.CloseTimes = userCfg.Editor.CloseTimes
	}
	if userCfg.Editor.MsgBarLife > 0 {
		cfg.Editor.MsgBarLife = userCfg.Editor.MsgBarLife
	}
	if userCfg.Editor.LineNumbers != "" {
		cfg.Editor.LineNumbers = userCfg.Editor.LineNumbers
	}
	mergeTheme(&cfg.Theme, userCfg.Theme)

	return cfg, nil
}

func mergeTheme(dst *Theme, src Theme) {
	if src.Foreground != "" {
		dst.Foreground = src.Foreground
	}
	if src.Background != "" {
		dst.Background = src.Background
	}
	if src.StatusBarForeground != "" {
		dst.StatusBarForeground = src.StatusBarForeground
	}
	if src.StatusBarBackground != "" {
		dst.StatusBarBackground = src.StatusBarBackground
	}
	if src.LineNumberForeground != "" {
		dst.LineNumberForeground = src.LineNumberForeground
	}
	if src.SelectionForeground != "" {
		dst.SelectionForeground = src.SelectionForeground
	}
	if src.SelectionBackground != "" {
		dst.SelectionBackground = src.SelectionBackground
	}
	if src.MatchForeground != "" {
		dst.MatchForeground = src.MatchForeground
	}
	if src.MatchBackground != "" {
		dst.MatchBackground = src.MatchBackground
	}
	if src.SyntaxNumber != "" {
		dst.SyntaxNumber = src.SyntaxNumber
	}
	if src.SyntaxString != "" {
		dst.SyntaxString = src.SyntaxString
	}
	if src.SyntaxComment != "" {
		dst.SyntaxComment = src.SyntaxComment
	}
	if src.SyntaxKeyword != "" {
		dst.SyntaxKeyword = src.SyntaxKeyword
	}
	if src.SyntaxFlowword != "" {
		dst.SyntaxFlowword = src.SyntaxFlowword
	}
	if src.SyntaxType != "" {
		dst.SyntaxType = src.SyntaxType
	}
	if src.SyntaxMetaword != "" {
		dst.SyntaxMetaword = src.SyntaxMetaword
	}
	if src.SyntaxIdent != "" {
		dst.SyntaxIdent = src.SyntaxIdent
	}
	if src.SyntaxFunction != "" {
		dst.SyntaxFunction = src.SyntaxFunction
	}
	if src.SyntaxPath != "" {
		dst.SyntaxPath = src.SyntaxPath
	}
}

func ConfigDir() (string, error) {
	if v := os.Getenv("MINO_CONFIG_HOME"); v != "" {
		return filepath.Join(v), nil
	}
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "mino"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "mino"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}
