// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// CaptionPanel is the edit state machine behind every caption viewer;
// PanelRegistry creates isolated instances of it for hosts.
package services
