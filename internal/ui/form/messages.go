// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package form

import "github.com/jeranaias/pwmeter/internal/config"

// ConfigReloadedMsg is sent by the config watcher when the file changes.
// Err is set when the new file could not be loaded; the current settings
// stay in effect.
type ConfigReloadedMsg struct {
	Config *config.Config
	Err    error
}
