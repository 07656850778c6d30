package configurator

import "errors"

var (
	ErrInvalidIngredient = errors.New("ingredient not in catalog group")
	ErrInvalidGoal       = errors.New("unknown fitness goal")
)
