// Package connectors contains source connector implementations.
//
// A connector knows how to reach one kind of narrative source
// (a directory of files, a GitHub issue tracker) and streams raw
// documents over channels for the pipeline to load.
package connectors
