package postfx

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"

	"github.com/gogpu/naga"
)

// Embedded WGSL shader sources of the full-screen passes.

//go:embed shaders/copy.wgsl
var copyShaderSource string

//go:embed shaders/output.wgsl
var outputShaderSource string

// ErrShaderCompile is returned by CompileShaders when a shader fails.
var ErrShaderCompile = errors.New("postfx: shader compilation failed")

// Shaders returns the WGSL source of every full-screen pass by name.
func Shaders() map[string]string {
	return map[string]string{
		"copy":   copyShaderSource,
		"output": outputShaderSource,
	}
}

// ShaderNames returns the shader names in sorted order.
func ShaderNames() []string {
	shaders := Shaders()
	names := make([]string, 0, len(shaders))
	for name := range shaders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CompileShaders compiles every shader to SPIR-V with naga. Shaders that
// compile are returned even when others fail; the error joins all failures.
func CompileShaders() (map[string][]byte, error) {
	out := make(map[string][]byte)
	var errs []error
	for _, name := range ShaderNames() {
		spirv, err := naga.Compile(Shaders()[name])
		if err != nil {
			errs = append(errs, fmt.Errorf("%w: %s: %w", ErrShaderCompile, name, err))
			continue
		}
		out[name] = spirv
	}
	return out, errors.Join(errs...)
}
