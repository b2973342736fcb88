package internal

// loxInstance holds a class pointer and a field table (spec §3.7).
// Property reads check fields first, then the method chain; a method
// hit is returned bound to this instance. Property writes always set
// a field — methods are never overwritten in place.
type loxInstance struct {
	class  *loxClass
	fields map[string]interface{}
}

func (i *loxInstance) get(tk *token) interface{} {
	if val, ok := i.fields[tk.lexeme]; ok {
		return val
	}
	if method := i.class.findMethod(tk.lexeme); method != nil {
		return method.bind(i)
	}
	panic(newRuntimeError(tk, errUndefinedProperty(tk.lexeme)))
}

func (i *loxInstance) set(name *token, value interface{}) {
	i.fields[name.lexeme] = value
}

func (i *loxInstance) String() string {
	return i.class.name + " instance"
}
