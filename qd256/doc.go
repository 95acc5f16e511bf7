// Package qd256 implements a toy byte cipher built on the quasidihedral group
// of order 256.
//
// The group presentation used throughout the package is
//
//	G = < r, s | r^128 = s^2 = 1, sr = (r^63)s >
//
// Every element of G is uniquely representable in the normal form (r^k)(s^j)
// with k in the range 0..127 and j either 0 or 1. For any byte b, the most
// significant bit of b is interpreted as j and the least significant seven
// bits as k. In this manner bytes are identified with elements of G.
//
// As an example of the conventions (using unsigned integer values for bytes):
//
//	128 * 1 = s * r = r^63 * s = 191
//
// Encryption is the running left-to-right product of the plaintext bytes, so
// ciphertext byte i is the product of plaintext bytes 0..i. Decryption
// recovers each plaintext byte by multiplying the inverse of the previous
// ciphertext byte with the current one.
//
// This is not a secure cipher. It is a deterministic, reversible byte
// transform whose only design goal is algebraic fidelity to the group
// presentation and exact round-trip correctness.
package qd256
