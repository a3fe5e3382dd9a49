/*
Package resources resolves external resources for documents.

As resource loading may be a time-consuming task, functions in this package
work in an async/await fashion by returning a promise.
Functions named

   Resolve…(…)

will return a resource-specific promise type, which the client will call later
to receive the loaded resource. The call to the promise-function will then block
until loading has completed.

Remote resources are downloaded once and kept in the user's cache directory,
in a folder named after the `app-key` of the global configuration.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package resources

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to tracing key 'cmf.resources'.
func tracer() tracing.Trace {
	return tracing.Select("cmf.resources")
}
