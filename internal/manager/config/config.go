// Package config holds the session configuration: a main viper
// backed by an optional config file and an overrides viper backed by
// flags and environment.
package config

import (
	"sync"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

const (
	Host = "host"
	Port = "port"

	LogLevel = "log_level"

	// project defaults
	FrameRate    = "frame_rate"
	CanvasWidth  = "canvas_width"
	CanvasHeight = "canvas_height"
	Duration     = "duration"

	// editing behavior
	HistoryMaxEntries = "history_max_entries"
	SnapCapturePx     = "snap_capture_px"
	SnapReleasePx     = "snap_release_px"
	SeekTolerance     = "seek_tolerance"
	ProbeCacheSize    = "probe_cache_size"
)

type Config struct {
	// main holds values read from the config file; overrides holds
	// flag and environment values which take precedence.
	main      *viper.Viper
	overrides *viper.Viper

	sync.RWMutex
}

func (i *Config) setDefaults() {
	v := i.main

	v.SetDefault(Host, "127.0.0.1")
	v.SetDefault(Port, 7420)
	v.SetDefault(LogLevel, "info")

	v.SetDefault(FrameRate, 30.0)
	v.SetDefault(CanvasWidth, 1920)
	v.SetDefault(CanvasHeight, 1080)
	v.SetDefault(Duration, 60.0)

	v.SetDefault(HistoryMaxEntries, 100)
	v.SetDefault(SnapCapturePx, 10.0)
	v.SetDefault(SnapReleasePx, 20.0)
	v.SetDefault(SeekTolerance, 0.25)
	v.SetDefault(ProbeCacheSize, 64)
}

// viper returns the viper that holds the given key: the overrides
// viper if the key was set there, the main viper otherwise.
func (i *Config) viper(key string) *viper.Viper {
	v := i.main
	if i.overrides.IsSet(key) {
		v = i.overrides
	}
	return v
}

func (i *Config) getString(key string) string {
	i.RLock()
	defer i.RUnlock()
	return i.viper(key).GetString(key)
}

func (i *Config) getInt(key string) int {
	i.RLock()
	defer i.RUnlock()
	return cast.ToInt(i.viper(key).Get(key))
}

func (i *Config) getFloat64(key string) float64 {
	i.RLock()
	defer i.RUnlock()
	return cast.ToFloat64(i.viper(key).Get(key))
}

// Set writes a value into the main config.
func (i *Config) Set(key string, value interface{}) {
	i.Lock()
	defer i.Unlock()
	i.main.Set(key, value)
}

func (i *Config) GetHost() string {
	return i.getString(Host)
}

func (i *Config) GetPort() int {
	return i.getInt(Port)
}

func (i *Config) GetLogLevel() string {
	return i.getString(LogLevel)
}

func (i *Config) GetFrameRate() float64 {
	return i.getFloat64(FrameRate)
}

func (i *Config) GetCanvasWidth() int {
	return i.getInt(CanvasWidth)
}

func (i *Config) GetCanvasHeight() int {
	return i.getInt(CanvasHeight)
}

func (i *Config) GetDuration() float64 {
	return i.getFloat64(Duration)
}

func (i *Config) GetHistoryMaxEntries() int {
	return i.getInt(HistoryMaxEntries)
}

func (i *Config) GetSnapCapturePx() float64 {
	return i.getFloat64(SnapCapturePx)
}

func (i *Config) GetSnapReleasePx() float64 {
	return i.getFloat64(SnapReleasePx)
}

func (i *Config) GetSeekTolerance() float64 {
	return i.getFloat64(SeekTolerance)
}

func (i *Config) GetProbeCacheSize() int {
	return i.getInt(ProbeCacheSize)
}
