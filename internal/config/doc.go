// Package config handles the devlaunch launch configuration.
//
// Configuration is optional: the built-in defaults describe the standard
// two-service project layout (a Python backend under backend/ started
// with "python run.py", a Yarn frontend under frontend/ started with
// "yarn dev"). A config file at the project root overrides individual
// fields per service.
//
// Two file forms are supported:
//
//   - .devlaunch.yaml / .devlaunch.yml, parsed with gopkg.in/yaml.v3
//   - .devlaunch.json, parsed as JSONC via github.com/tidwall/jsonc,
//     so comments and trailing commas are tolerated
//
// The file is merged over the defaults field by field: keys absent from
// the file keep their default values.
package config
