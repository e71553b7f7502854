// Package render paints records to the terminal.
//
// Terminal is the production implementation of the engine's Renderer
// collaborator: it clears the screen and draws each record as a
// lipgloss-bordered block with the title on top and the dimension/category
// caption below the art. It also owns the startup banner and the goodbye
// message so all terminal presentation lives in one place.
package render
