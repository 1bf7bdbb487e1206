package session

// Kind - итог проверки запроса
type Kind int

const (
	Anonymous Kind = iota
	Authenticated
	Rejected
)

func (k Kind) String() string {
	switch k {
	case Authenticated:
		return "authenticated"
	case Rejected:
		return "rejected"
	default:
		return "anonymous"
	}
}

// Verifier - часть Servicer, нужная для Resolve
type Verifier interface {
	Verify(token string) (*Claims, error)
}

// Result - Claims заполнены только для Authenticated, Reason только для Rejected
type Result struct {
	Kind   Kind
	Claims *Claims
	Reason error
}

// Resolve не делает побочных эффектов, решение о редиректе или 401
// принимает транспортный слой.
func Resolve(v Verifier, token string) Result {
	if token == "" {
		return Result{Kind: Anonymous}
	}

	claims, err := v.Verify(token)
	if err != nil {
		return Result{Kind: Rejected, Reason: err}
	}

	return Result{Kind: Authenticated, Claims: claims}
}
