package internal

// returnSignal is panicked by visitReturnStmt and recovered by the
// active loxFunction.call frame — the one non-local control transfer
// the language has (spec §5). It is a distinct Go type from
// *runtimeError so a recover() never confuses "a function returned"
// with "something went wrong".
type returnSignal struct {
	value interface{}
}
