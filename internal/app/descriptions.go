package app

import (
	"github.com/vk/golaunch/descriptions/manual_drive"
	"github.com/vk/golaunch/internal/registry"
)

// coreDescriptions is the definitive list of built-in launch descriptions
// compiled into the golaunch binary.
var coreDescriptions = []registry.Provider{
	&manual_drive.Description{},
}
