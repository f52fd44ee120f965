// Package arb reads and writes Application Resource Bundle documents, the
// flat JSON dialect used for translation catalogs. Decoding walks the token
// stream so entry order survives, attaches "@key" metadata objects to their
// base entries wherever they appear in the file, and folds "@@" keys into
// document metadata. Encoding is deterministic: metadata first, then entries
// in document order, so repeated saves of an unchanged document are
// byte-identical.
package arb
