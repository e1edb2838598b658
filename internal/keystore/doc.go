// Package keystore manages the on-disk key directory under ~/.purr: layout
// creation, name-to-path resolution, imports, and the permission policy
// that keeps private keys owner-only. Key halves are paired by filename
// stem alone; the keystore never verifies that a .pub and .key actually
// correspond.
package keystore
