package union_test

import (
	"fmt"

	"unionize/union"
)

func Example() {
	u := union.MustBuild(union.Records("x", "y"), union.DefaultConfig())

	x, _ := u.Create("x")(union.Record{"n": 3})
	fmt.Println(x)
	fmt.Println(u.Is("x")(x), u.Is("y")(x))

	n, _ := union.MatchValue(u, x, union.Cases[int]{
		"x": func(p any) (int, error) { return p.(union.Record)["n"].(int) + 9, nil },
		"y": func(p any) (int, error) { return len(p.(union.Record)["s"].(string)), nil },
	})
	fmt.Println(n)

	// Output:
	// map[n:3 tag:x]
	// true false
	// 12
}

func Example_valueField() {
	u := union.MustBuild(union.Values("x", "y"), union.Config{TagField: "flim", ValueField: "flam"})

	x, _ := u.Create("x")(3)
	fmt.Println(x)

	_, err := u.As("y")(x)
	fmt.Println(err)

	// Output:
	// map[flam:3 flim:x]
	// Attempted to cast x as y
}

func ExampleUnion_UpdateOn() {
	u := union.MustBuild(union.Records("V", "W"), union.DefaultConfig())
	v, _ := u.Create("V")(union.Record{"b": "b", "c": "c"})

	shout, _ := u.UpdateOn(union.Updates{
		"V": func(p any) (any, error) {
			return union.Record{"c": p.(union.Record)["c"].(string) + "!"}, nil
		},
	})

	next, _ := shout(v)
	fmt.Println(v)
	fmt.Println(next)

	// Output:
	// map[b:b c:c tag:V]
	// map[b:b c:c! tag:V]
}

func ExampleVariant() {
	type event struct {
		Name string `json:"name"`
	}

	u := union.MustBuild(union.Records("started", "stopped"), union.Config{TagField: "type"})
	started := union.MustDefine[event](u, "started")

	v, _ := started.New(event{Name: "job-1"})
	fmt.Println(v)

	describe, _ := union.MatchOn(u, union.Cases[string]{
		started.Tag():     union.On(started, func(e event) string { return e.Name + " is running" }),
		union.DefaultCase: func(any) (string, error) { return "idle", nil },
	})

	msg, _ := describe(v)
	fmt.Println(msg)

	// Output:
	// map[name:job-1 type:started]
	// job-1 is running
}
