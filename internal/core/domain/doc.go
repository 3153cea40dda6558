// Package domain contains the core entities of the mapping pipeline:
// corpus documents, discovered topics, the science backbone taxonomy,
// decision components, SVO dictionary entries and mapping results.
// Types here carry no dependencies on adapters or external libraries.
package domain
