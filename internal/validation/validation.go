package validation

import (
	"errors"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// ginValidator returns the validator behind gin's binding.
func ginValidator() (*validator.Validate, error) {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil, errors.New("gin validator engine is not *validator.Validate")
	}
	return v, nil
}

// MustRegisterGin adds a custom tag to gin's validator.
func MustRegisterGin(tag string, fn validator.Func) {
	v, err := ginValidator()
	if err == nil {
		err = v.RegisterValidation(tag, fn)
	}
	if err != nil {
		panic(err)
	}
}

// MustRegisterGinAlias adds a tag that expands to other tags.
func MustRegisterGinAlias(alias, tags string) {
	v, err := ginValidator()
	if err != nil {
		panic(err)
	}
	v.RegisterAlias(alias, tags)
}
