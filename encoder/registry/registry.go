package registry

import (
	"reflect"
	"sync"

	"github.com/surveyorhq/surveyor/core"
	"github.com/surveyorhq/surveyor/encoder"
)

var once sync.Once

//nolint:gochecknoinits
func init() {
	once.Do(func() {
		types := []reflect.Type{
			reflect.TypeOf(core.ContractCode{}),
			reflect.TypeOf(core.L1Head{}),
		}

		for _, t := range types {
			err := encoder.RegisterType(t)
			if err != nil {
				panic(err)
			}
		}
	})
}
