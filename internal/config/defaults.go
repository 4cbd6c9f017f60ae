// Package config provides configuration loading and defaults for wims.
package config

import "github.com/walkinmyshoes/wims/internal/empathy"

// DefaultConfigDir is the default location for wims configuration.
const DefaultConfigDir = "~/.config/wims"

// DefaultConfigFile is the filename for the YAML config.
const DefaultConfigFile = "config.yaml"

// DefaultUserID identifies the local trainee in the event log. A fixed
// ID keeps single-user installs simple; multi-user setups override it.
const DefaultUserID = "local"

// DefaultUserName is used on certificates when no name is configured.
const DefaultUserName = ""

// DefaultTargetScore is the score the improvement suggestions aim for.
const DefaultTargetScore = 71

// DefaultTotalTasks is the task count per scenario when a scenario does
// not override it.
const DefaultTotalTasks = 5

// DefaultSnapshotKeep is how many profile snapshots to retain.
const DefaultSnapshotKeep = 5

// DefaultWeights holds the default empathy scoring weights.
var DefaultWeights = empathy.DefaultWeights()
