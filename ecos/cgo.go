//go:build ecos && (linux || darwin)

package ecos

/*
#cgo CFLAGS: -DCTRLC=1
#cgo LDFLAGS: -lecos -lm

#include <ecos.h>
*/
import "C"
import (
	"fmt"
	"unsafe"
)

// NativeEngine invokes the ECOS C library in-process. It is stateless: each
// Solve sets up a fresh ECOS workspace and tears it down before returning.
type NativeEngine struct{}

// NewNativeEngine returns an Engine backed by the ECOS C library.
func NewNativeEngine() (Engine, error) {
	return &NativeEngine{}, nil
}

// Solve implements Engine via ECOS_setup / ECOS_solve / ECOS_cleanup.
func (e *NativeEngine) Solve(data *ProblemData, verbose bool, opts Options) (*RawResult, error) {
	if data.F != nil {
		return nil, fmt.Errorf("nonlinear block not supported by the native engine")
	}

	n := len(data.C)
	m := data.G.Rows
	p := data.A.Rows

	q := toIdxint(data.Dims.Q)
	gjc := toIdxint(data.G.ColPtr)
	gir := toIdxint(data.G.RowIdx)
	ajc := toIdxint(data.A.ColPtr)
	air := toIdxint(data.A.RowIdx)

	var pQ, pGjc, pGir, pAjc, pAir *C.idxint
	var pGpr, pApr, pC, pH, pB *C.pfloat
	if len(q) > 0 {
		pQ = &q[0]
	}
	if m > 0 {
		pGjc = &gjc[0]
		if len(gir) > 0 {
			pGir = &gir[0]
			pGpr = (*C.pfloat)(&data.G.Values[0])
		}
		pH = (*C.pfloat)(&data.H[0])
	}
	if p > 0 {
		pAjc = &ajc[0]
		if len(air) > 0 {
			pAir = &air[0]
			pApr = (*C.pfloat)(&data.A.Values[0])
		}
		pB = (*C.pfloat)(&data.B[0])
	}
	if n > 0 {
		pC = (*C.pfloat)(&data.C[0])
	}

	w := C.ECOS_setup(
		C.idxint(n), C.idxint(m), C.idxint(p),
		C.idxint(data.Dims.L), C.idxint(len(data.Dims.Q)), pQ, C.idxint(data.Dims.E),
		pGpr, pGjc, pGir,
		pApr, pAjc, pAir,
		pC, pH, pB)
	if w == nil {
		return nil, fmt.Errorf("ECOS_setup failed")
	}
	defer C.ECOS_cleanup(w, 0)

	if verbose {
		w.stgs.verbose = 1
	} else {
		w.stgs.verbose = 0
	}
	if err := applySettings(w, opts); err != nil {
		return nil, err
	}

	exit := C.ECOS_solve(w)

	raw := &RawResult{
		X: fromPfloat(w.x, n),
		Y: fromPfloat(w.y, p),
		Z: fromPfloat(w.z, m),
		Info: Info{
			ExitFlag: ExitCode(exit),
			PCost:    float64(w.info.pcost),
			Iter:     int(w.info.iter),
			Timing: Timing{
				Setup: float64(w.info.tsetup),
				Solve: float64(w.info.tsolve),
			},
		},
	}
	return raw, nil
}

// applySettings writes the free-form options onto the ECOS settings block.
// Unknown option names are rejected so typos surface instead of silently
// running with defaults.
func applySettings(w *C.pwork, opts Options) error {
	for name, v := range opts.Float {
		switch name {
		case "feastol":
			w.stgs.feastol = C.pfloat(v)
		case "abstol":
			w.stgs.abstol = C.pfloat(v)
		case "reltol":
			w.stgs.reltol = C.pfloat(v)
		case "feastol_inacc":
			w.stgs.feastol_inacc = C.pfloat(v)
		case "abstol_inacc":
			w.stgs.abstol_inacc = C.pfloat(v)
		case "reltol_inacc":
			w.stgs.reltol_inacc = C.pfloat(v)
		default:
			return fmt.Errorf("unknown float option %q", name)
		}
	}
	for name, v := range opts.Int {
		switch name {
		case "maxit":
			w.stgs.maxit = C.idxint(v)
		case "nitref":
			w.stgs.nitref = C.idxint(v)
		default:
			return fmt.Errorf("unknown int option %q", name)
		}
	}
	return nil
}

func toIdxint(v []int) []C.idxint {
	out := make([]C.idxint, len(v))
	for i, x := range v {
		out[i] = C.idxint(x)
	}
	return out
}

func fromPfloat(p *C.pfloat, n int) []float64 {
	if p == nil || n == 0 {
		return nil
	}
	src := unsafe.Slice((*float64)(unsafe.Pointer(p)), n)
	out := make([]float64, n)
	copy(out, src)
	return out
}
