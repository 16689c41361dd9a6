// Package config loads router configuration.
//
// Configuration comes from a TOML or YAML file (chosen by extension) and
// is then overridden by UIROUTER_* environment variables:
//
//	UIROUTER_LOG_LEVEL          logging.level
//	UIROUTER_PLATFORM           router.platform
//	UIROUTER_CLICK_INTERVAL     router.click_interval
//	UIROUTER_INPUT_DISABLED     router.input_disabled
//	UIROUTER_KEYBOARD_DISABLED  router.keyboard_disabled
//	UIROUTER_SCRIPT             script.path
//
// A missing file is not an error; defaults apply. Watcher reloads the file
// when it changes on disk.
package config
