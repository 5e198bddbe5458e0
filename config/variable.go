package config

import "fmt"

// Variable is a named string value referenced as vars.<name>. A value set
// with `commander vars set` takes precedence over Default.
type Variable struct {
	Name        string `hcl:"name,label"`
	Default     string `hcl:"default,optional"`
	Description string `hcl:"description,optional"`
	Secret      bool   `hcl:"secret,optional"`
}

func (v *Variable) Validate() error {
	if v.Secret && v.Default != "" {
		return fmt.Errorf("secret variable cannot have a default value set in config")
	}
	return nil
}
