package domain

import "fmt"

// Category is a named alert class with the identifier substituted into the report template
type Category struct {
	Name string `mapstructure:"name"`
	ID   string `mapstructure:"id"`
}

func (c Category) String() string {
	return fmt.Sprintf("%s:%s", c.Name, c.ID)
}

// Categories keeps the declared order, which is also the generation order
type Categories []Category

func (cs Categories) Names() []string {
	names := make([]string, 0, len(cs))
	for _, c := range cs {
		names = append(names, c.Name)
	}
	return names
}
