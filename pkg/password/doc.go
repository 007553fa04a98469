// Package password provides one-way password hashing and verification
// backed by bcrypt.
//
// bcrypt hashes are self-describing: the output string embeds the
// algorithm identifier, cost factor, and salt alongside the digest, so
// Verify needs nothing beyond the stored hash. The work factor is
// deliberately expensive to resist offline brute force.
package password
