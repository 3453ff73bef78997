// Package manual_drive provides the built-in launch description for the
// manual-drive simulation on the Kashiwanoha map: the simulation node
// itself, the sensor simulator, the two visualization tools, and the
// joystick sub-launch.
package manual_drive

import (
	"context"
	"path/filepath"

	"github.com/vk/golaunch/internal/index"
	"github.com/vk/golaunch/internal/launch"
	"github.com/vk/golaunch/internal/registry"
	"github.com/zclconf/go-cty/cty"
)

// Ref is the canonical reference this description registers under.
const Ref = "cpp_mock_scenarios/manual_drive_kashiwanoha"

// Kashiwanoha map origin, WGS84.
const (
	originLatitude  = 35.903555800615614
	originLongitude = 139.93339979022568
)

// simulatorPort is the port the simulation node and the sensor simulator
// agree on.
const simulatorPort = 8080

// Description implements the registry.Provider interface for this package.
type Description struct{}

// Register registers the generator with the application registry.
func (d *Description) Register(r *registry.Registry) {
	r.RegisterDescription(Ref, Generate)
}

// Generate resolves the map, viewer-configuration, and joystick launch
// paths, then returns the five launch directives in start order.
func Generate(ctx context.Context, ix *index.Index) (*launch.Description, error) {
	mapPath, err := ix.ShareFile("kashiwanoha_map", "map", "lanelet2_map.osm")
	if err != nil {
		return nil, err
	}
	viewerConfig, err := ix.ShareFile("cpp_mock_scenarios", "rviz", "view_kashiwanoha.rviz")
	if err != nil {
		return nil, err
	}
	joyLaunchDir, err := ix.LaunchDir("joy_to_vehicle_cmd")
	if err != nil {
		return nil, err
	}

	return launch.NewDescription(
		&launch.Node{
			Package:    "cpp_mock_scenarios",
			Executable: "manual_drive_kashiwanoha",
			Name:       "manual_kashiwanoha",
			Output:     launch.OutputScreen,
			Parameters: map[string]cty.Value{
				"map_path":         cty.StringVal(mapPath),
				"origin_latitude":  cty.NumberFloatVal(originLatitude),
				"origin_longitude": cty.NumberFloatVal(originLongitude),
				"port":             cty.NumberIntVal(simulatorPort),
			},
			Arguments: []string{"__log_level:=info"},
		},
		&launch.Node{
			Package:    "simple_sensor_simulator",
			Executable: "simple_sensor_simulator_node",
			Name:       "simple_sensor_simulator_node",
			Output:     launch.OutputScreen,
			Parameters: map[string]cty.Value{
				"port": cty.NumberIntVal(simulatorPort),
			},
			Arguments: []string{"__log_level:=warn"},
		},
		&launch.Node{
			Package:    "rviz2",
			Executable: "rviz2",
			Name:       "rviz2",
			Output:     launch.OutputScreen,
			Arguments:  []string{"-d", viewerConfig},
		},
		&launch.Node{
			Package:    "openscenario_visualization",
			Executable: "openscenario_visualization_node",
			Name:       "openscenario_visualization_node",
			Output:     launch.OutputScreen,
		},
		&launch.Include{
			Source: filepath.Join(joyLaunchDir, "joy_to_vehicle_cmd.launch.hcl"),
		},
	), nil
}
