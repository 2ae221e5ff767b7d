// Package greek holds the polytonic Greek letter tables used to rewrite
// regular expressions.
//
// The 24 letters of the alphabet are static data. Every precomposed variant
// of a letter found in the Greek and Coptic block and in the Greek Extended
// block is attached to its base letter once, at package initialization, by
// canonical decomposition: the first rune of the decomposition is the base
// letter and the combining marks that follow select the [Tier].
//
// Consonants share the single [Consonantal] tier, so a consonant range such
// as β-ψ also covers ῥ, ῤ and final sigma ς.
//
// The tables are never mutated after initialization and are safe for
// concurrent use.
package greek
