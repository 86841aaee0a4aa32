package api

import (
	"github.com/lysyi3m/time-normalizer/app/normalizer"
)

type NormalizerInterface interface {
	Run(raw string) (normalizer.NormalizedTime, error)
}

var _ NormalizerInterface = (*normalizer.Normalizer)(nil)

type Handler struct {
	normalizer NormalizerInterface
	version    string
}
