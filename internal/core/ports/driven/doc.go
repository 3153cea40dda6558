// Package driven defines the outbound ports of the pipeline core:
// interfaces implemented by connectors, loaders, the topic modeler,
// the vocabulary stores and the exporters. The core depends only on
// these interfaces, never on concrete adapters.
package driven
