package receipt

//go:generate go tool go-enum

// Markup element kinds the walker understands. Element names outside this
// set are not an error: the element and its whole subtree are skipped.
// ENUM(receipt, p, div, section, article, header, footer, li, h1, h2, h3, h4, h5, span, em, b, left, right, value, line, pre, hr, br, img, barcode, cut, partialcut, cashdraw)
type Tag int
