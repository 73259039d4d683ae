// Package internal contains the infrastructure behind the list view
// framework: SDL initialisation, the window, logging, theming, input
// translation and texture caching. Types and functions in this package are
// not part of the public API.
package internal
