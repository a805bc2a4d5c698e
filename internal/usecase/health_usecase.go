package usecase

import "context"

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

// Probe reports whether an optional dependency is reachable.
type Probe func(ctx context.Context) error

type healthUsecase struct {
	probes map[string]Probe
}

// NewHealthUsecase builds the health check. Dependencies that are not
// configured are simply left out of probes.
func NewHealthUsecase(probes map[string]Probe) HealthUsecase {
	return &healthUsecase{probes: probes}
}

// Check reports "degraded", never an error, when an optional dependency is down.
func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	out := map[string]string{"status": "ok"}
	for name, probe := range u.probes {
		if probe == nil {
			continue
		}
		if err := probe(ctx); err != nil {
			out[name] = "unavailable"
			out["status"] = "degraded"
			continue
		}
		out[name] = "ok"
	}
	return out
}
