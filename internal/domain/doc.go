// Package domain contains the core domain model for rectcalc.
//
// The domain has no knowledge of flags, YAML or terminals: the cli, infra and ui packages
// map into and out of these types.
package domain
