// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.4.0"

// Milestones:
// 0.4.0 - WebSocket frame streaming, JSON frame export, zoom damping curve
// 0.3.0 - Constellation figures, catalog browser with rise/set detail panel
// 0.2.0 - Stereographic atlas view, mouse drag and wheel support, auto-rotation
// 0.1.0 - Initial release: perspective sky view, bright star catalog, headless mode
