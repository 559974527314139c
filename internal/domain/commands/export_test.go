package commands

// RenderAll exports renderAll for testing.
var RenderAll = renderAll //nolint:gochecknoglobals // test export
