package internal

// loxClass is itself callable: calling it constructs a loxInstance
// and, if an "init" method exists, binds and invokes it with the call
// arguments (spec §3.6, §4.3 "Class declaration execution").
type loxClass struct {
	name       string
	superclass *loxClass
	methods    map[string]*loxFunction
}

func (c *loxClass) findMethod(name string) *loxFunction {
	if method, ok := c.methods[name]; ok {
		return method
	}
	if c.superclass != nil {
		return c.superclass.findMethod(name)
	}
	return nil
}

func (c *loxClass) arity() int {
	if init := c.findMethod("init"); init != nil {
		return init.arity()
	}
	return 0
}

func (c *loxClass) call(interp *Interpreter, arguments []interface{}) interface{} {
	instance := &loxInstance{class: c, fields: make(map[string]interface{})}
	if init := c.findMethod("init"); init != nil {
		init.bind(instance).call(interp, arguments)
	}
	return instance
}

func (c *loxClass) String() string {
	return c.name
}
