package glm

//go:generate go tool stringer -type=Kind -trimprefix=Kind

// Kind is the closed set of matrix shapes the dispatchers distinguish,
// ordered from least to most specific.
type Kind uint8

const (
	KindGeneral Kind = iota
	KindPerspective
	KindAffine
	KindOrthonormal
	KindTranslation
	KindIdentity
)

// IsAffine reports whether matrices of this kind have a last row of (0, 0, 0, 1).
func (k Kind) IsAffine() bool {
	return k >= KindAffine
}
