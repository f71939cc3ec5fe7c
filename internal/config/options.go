package config

// RouteOptions are the path-generator's CLI-derived run options (§6): the
// `-dd`, `-sw`, `-2l` flags renamed to readable long forms.
type RouteOptions struct {
	// DoorToDoor enables Phase F: direct door-to-door shortcut ways.
	DoorToDoor bool

	// SimplifyWays enables Phase D.2: removal of any interior way vertex
	// whose shortcut segment stays inside the room.
	SimplifyWays bool

	// PrettyPrint controls whether the output XML is indented.
	PrettyPrint bool

	// DebugSVGDir, if non-empty, writes one debug SVG per room to this
	// directory showing the polygon, barriers, doors and synthesized ways.
	DebugSVGDir string
}
