// SPDX-License-Identifier: GPL-2.0-or-later
package render

import (
	"texlab/filter"
)

// AppState is everything the user can change while the lab runs.
type AppState struct {
	Filter    filter.Settings
	CameraPan float32
	ShowUI    bool
}

func NewAppState() *AppState {
	return &AppState{
		Filter: filter.Default(),
	}
}
