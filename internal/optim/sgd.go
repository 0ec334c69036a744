package optim

// SGD implements gradient descent with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
//
// Momentum accelerates descent along persistent directions and dampens
// oscillations.
type SGD struct {
	lr       float64
	momentum float64
	velocity []float64
}

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig struct {
	LR       float64 // Learning rate (default: 0.01)
	Momentum float64 // Momentum factor (default: 0.0, range: [0, 1))
}

// NewSGD creates a new SGD optimizer with defaults applied for zero-value
// config fields.
func NewSGD(config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}
	return &SGD{
		lr:       config.LR,
		momentum: config.Momentum,
	}
}

// Step applies one SGD update to params in place.
func (s *SGD) Step(params, grads []float64) {
	if s.momentum == 0 {
		for i := range params {
			params[i] -= s.lr * grads[i]
		}
		return
	}

	if s.velocity == nil {
		s.velocity = make([]float64, len(params))
	}
	for i := range params {
		s.velocity[i] = s.momentum*s.velocity[i] + grads[i]
		params[i] -= s.lr * s.velocity[i]
	}
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}

// SetLR updates the learning rate.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}
