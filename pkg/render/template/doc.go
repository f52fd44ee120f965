// Package template defines the renderer-agnostic template engine contract
// shared by HTML-producing surfaces such as the coverage report. Adapters for
// concrete engines live in subpackages.
package template
