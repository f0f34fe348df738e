// Package domain contains the core model: the add-command grammar, the
// department roster and the shared error taxonomy.
//
// The domain is transport- and persistence-agnostic: it does not depend on YAML parsing,
// terminals, or the filesystem. Infra/adapters map into/from these types.
package domain
