package dataio

import (
	"encoding/json"
	"io"
	"math"
	"os"

	"github.com/san-kum/crashwatch/internal/engine"
	"github.com/san-kum/crashwatch/internal/series"
)

// JSON documents mirroring the engine results. Undefined entries (NaN)
// become null, which encoding/json cannot represent for plain float64.
type resultDoc struct {
	CSD        *csdDoc  `json:"csd,omitempty"`
	LPPL       *lpplDoc `json:"lppl,omitempty"`
	Provenance provDoc  `json:"provenance"`
}

type csdDoc struct {
	CurrentAR1      float64    `json:"currentAR1"`
	KendallTau      float64    `json:"kendallTau"`
	Status          string     `json:"status"`
	CurrentVariance float64    `json:"currentVariance"`
	Trend           []*float64 `json:"trend"`
	Residuals       []*float64 `json:"residuals"`
	AR1Series       []*float64 `json:"ar1Series"`
	VarianceSeries  []*float64 `json:"varianceSeries"`
}

type lpplDoc struct {
	IsBubble   bool     `json:"isBubble"`
	Confidence float64  `json:"confidence"`
	TCDays     *int     `json:"tcDays"`
	R2         float64  `json:"r2"`
	TC         *float64 `json:"tc,omitempty"`
	A          *float64 `json:"A,omitempty"`
	B          *float64 `json:"B,omitempty"`
	C          *float64 `json:"C,omitempty"`
	M          *float64 `json:"m,omitempty"`
	Omega      *float64 `json:"omega,omitempty"`
	Phi        *float64 `json:"phi,omitempty"`
}

type provDoc struct {
	Observations     int     `json:"observations"`
	DetrendBandwidth float64 `json:"detrendBandwidth"`
	CSDWindow        int     `json:"csdWindow"`
	TauLookback      int     `json:"tauLookback"`
}

// Encode writes an analysis result as indented JSON.
func Encode(w io.Writer, result *engine.Result) error {
	doc := resultDoc{
		Provenance: provDoc{
			Observations:     result.Provenance.Observations,
			DetrendBandwidth: result.Provenance.Config.DetrendBandwidth,
			CSDWindow:        result.Provenance.Config.CSDWindow,
			TauLookback:      result.Provenance.Config.TauLookback,
		},
	}

	if result.CSD != nil {
		doc.CSD = &csdDoc{
			CurrentAR1:      result.CSD.CurrentAR1,
			KendallTau:      result.CSD.KendallTau,
			Status:          string(result.CSD.Status),
			CurrentVariance: result.CSD.CurrentVariance,
			Trend:           nullable(result.CSD.Trend),
			Residuals:       nullable(result.CSD.Residuals),
			AR1Series:       nullable(result.CSD.AR1),
			VarianceSeries:  nullable(result.CSD.Variance),
		}
	}

	l := &lpplDoc{
		IsBubble:   result.LPPL.IsBubble,
		Confidence: result.LPPL.Confidence,
		R2:         result.LPPL.R2,
	}
	if fit := result.LPPL.Fit; fit != nil {
		tcDays := result.LPPL.TCDays
		l.TCDays = &tcDays
		l.TC = &fit.TC
		l.A = &fit.A
		l.B = &fit.B
		l.C = &fit.C
		l.M = &fit.M
		l.Omega = &fit.Omega
		l.Phi = &fit.Phi
	}
	doc.LPPL = l

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// WriteResult saves an analysis result to a JSON file.
func WriteResult(path string, result *engine.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return Encode(file, result)
}

// nullable converts a series to pointers, mapping NaN to nil.
func nullable(s series.Series) []*float64 {
	out := make([]*float64, len(s))
	for i, v := range s {
		if math.IsNaN(v) {
			continue
		}
		v := v
		out[i] = &v
	}
	return out
}
