package ports

// Navigator performs client-side navigation to a route path. Dispatching a
// route action calls it with the action's module.
type Navigator interface {
	Navigate(path string) error
}

// NavigatorFunc adapts a plain function to Navigator.
type NavigatorFunc func(path string) error

func (f NavigatorFunc) Navigate(path string) error {
	return f(path)
}
