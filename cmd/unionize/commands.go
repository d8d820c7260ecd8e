package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"unionize/internal/common"
	"unionize/internal/diagnostic"
	"unionize/internal/schemafile"
	"unionize/union"
)

var (
	errUsage         = errors.New("usage")
	errSchemaInvalid = errors.New("schema has errors")
)

type env struct {
	out    io.Writer
	log    *logrus.Logger
	format string
}

func (e *env) before(c *cli.Context) error {
	if c.GlobalBool("debug") {
		e.log.SetLevel(logrus.DebugLevel)
	}

	if c.GlobalBool("no-color") {
		color.NoColor = true
	}

	e.format = c.GlobalString("output")
	if e.format != formatJSON && e.format != formatYAML {
		return fmt.Errorf("%w: unknown output format %q", errUsage, e.format)
	}

	return nil
}

func (e *env) check(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("%w: check FILE...", errUsage)
	}

	var (
		res    diagnostic.Diagnostics
		unions int
	)

	for _, path := range c.Args() {
		f, err := schemafile.LoadFile(path)
		if err != nil {
			return err
		}

		found := schemafile.Validate(f)
		found.SetSource(path)
		res.Merge(*found)
		unions += len(f.Unions)

		e.log.WithFields(logrus.Fields{
			"file":     path,
			"errors":   len(found.Errors),
			"warnings": len(found.Warnings),
		}).Debug("validated schema")
	}

	writeDiagnostics(e.out, res.All())
	if res.HasErrors() {
		return fmt.Errorf("%d errors: %w", len(res.Errors), errSchemaInvalid)
	}

	fmt.Fprintf(e.out, "%d files, %d unions ok\n", c.NArg(), unions)

	return nil
}

func (e *env) rewrite(c *cli.Context) error {
	path, ok := common.First(c.Args())
	if !ok || c.NArg() != 1 {
		return fmt.Errorf("%w: fmt FILE", errUsage)
	}

	f, err := schemafile.LoadFile(path)
	if err != nil {
		return err
	}

	if !c.Bool("write") {
		data, err := schemafile.Marshal(f)
		if err != nil {
			return err
		}

		_, err = e.out.Write(data)

		return err
	}

	if err := schemafile.WriteFile(f, path); err != nil {
		return err
	}

	e.log.WithField("file", path).Debug("rewrote schema")

	return nil
}

func (e *env) list(c *cli.Context) error {
	path, ok := common.First(c.Args())
	if !ok {
		return fmt.Errorf("%w: list FILE", errUsage)
	}

	f, err := schemafile.LoadFile(path)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(e.out, 0, 4, 2, ' ', 0)
	for _, d := range f.Unions {
		layout := "tag: " + d.Tag
		if d.Value != "" {
			layout += ", value: " + d.Value
		}

		fmt.Fprintf(tw, "%s\t(%s)\t\n", d.Name, layout)

		for _, v := range d.Variants {
			shape := union.ShapeRecord
			detail := make([]string, 0, len(v.Fields))

			for _, name := range v.FieldNames() {
				detail = append(detail, name+":"+v.Fields[name])
			}

			if v.IsValue() {
				shape = union.ShapeValue
				detail = []string{v.Type}
			}

			fmt.Fprintf(tw, "  %s\t%s\t%s\n", v.Name, strings.ToLower(shape.String()), strings.Join(detail, " "))
		}
	}

	return tw.Flush()
}

func (e *env) create(c *cli.Context) error {
	d, u, err := e.load(c)
	if err != nil {
		return err
	}

	variant, ok := common.First(c.Args())
	if !ok {
		return fmt.Errorf("%w: create VARIANT [key=value...|value]", errUsage)
	}

	payload, err := d.Payload(variant, c.Args().Tail())
	if err != nil {
		return err
	}

	inst, err := u.Create(variant)(payload)
	if err != nil {
		return err
	}

	e.log.WithField("variant", variant).Debug("created instance")

	return e.write(inst)
}

func (e *env) is(c *cli.Context) error {
	variant, inst, u, err := e.variantAndInstance(c)
	if err != nil {
		return err
	}

	fmt.Fprintln(e.out, u.Is(variant)(inst))

	return nil
}

func (e *env) cast(c *cli.Context) error {
	variant, inst, u, err := e.variantAndInstance(c)
	if err != nil {
		return err
	}

	payload, err := u.As(variant)(inst)
	if err != nil {
		return err
	}

	return e.write(payload)
}

func (e *env) update(c *cli.Context) error {
	d, u, err := e.load(c)
	if err != nil {
		return err
	}

	if c.NArg() < 1 {
		return fmt.Errorf("%w: update INSTANCE [key=value...|value]", errUsage)
	}

	inst, err := readInstance(c.Args().First())
	if err != nil {
		return err
	}

	tag, ok := u.Tag(inst)
	if !ok || !u.Has(tag) {
		return fmt.Errorf("instance does not hold a variant of %s", d.Name)
	}

	partial, err := d.Payload(tag, c.Args().Tail())
	if err != nil {
		return err
	}

	next, err := u.UpdateValue(inst, union.Updates{
		tag: func(any) (any, error) { return partial, nil },
	})
	if err != nil {
		return err
	}

	e.log.WithField("variant", tag).Debug("updated instance")

	return e.write(next)
}

// load resolves the --file and --union flags to a declaration and its union.
func (e *env) load(c *cli.Context) (*schemafile.Declaration, *union.Union, error) {
	path := c.String("file")
	if path == "" {
		return nil, nil, fmt.Errorf("%w: --file is required", errUsage)
	}

	f, err := schemafile.LoadFile(path)
	if err != nil {
		return nil, nil, err
	}

	var d *schemafile.Declaration
	switch name := c.String("union"); {
	case name != "":
		d, err = f.Lookup(name)
		if err != nil {
			return nil, nil, err
		}
	case common.IsSingle(f.Unions):
		d = &f.Unions[0]
	default:
		return nil, nil, fmt.Errorf("%w: --union is required, %s declares %d unions", errUsage, path, len(f.Unions))
	}

	u, err := d.Build()
	if err != nil {
		return nil, nil, err
	}

	e.log.WithFields(logrus.Fields{"file": path, "union": d.Name}).Debug("loaded union")

	return d, u, nil
}

func (e *env) variantAndInstance(c *cli.Context) (string, union.Record, *union.Union, error) {
	d, u, err := e.load(c)
	if err != nil {
		return "", nil, nil, err
	}

	if c.NArg() != 2 {
		return "", nil, nil, fmt.Errorf("%w: %s VARIANT INSTANCE", errUsage, c.Command.Name)
	}

	variant := c.Args().Get(0)
	if _, err := d.Variant(variant); err != nil {
		return "", nil, nil, err
	}

	inst, err := readInstance(c.Args().Get(1))
	if err != nil {
		return "", nil, nil, err
	}

	return variant, inst, u, nil
}

// readInstance decodes a JSON instance given inline or as @path.
func readInstance(arg string) (union.Record, error) {
	data := []byte(arg)
	if path, ok := strings.CutPrefix(arg, "@"); ok {
		var err error

		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read instance %s: %w", path, err)
		}
	}

	var inst union.Record
	if err := json.Unmarshal(data, &inst); err != nil {
		return nil, fmt.Errorf("instance is not a JSON object: %w", err)
	}

	return inst, nil
}
