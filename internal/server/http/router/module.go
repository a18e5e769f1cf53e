package router

import "go.uber.org/fx"

// Module provides the gin engine with all dishpatch routes attached.
var Module = fx.Provide(Setup)
