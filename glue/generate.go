package glue

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"go.uber.org/zap"
)

var javaTemplate = template.Must(template.New("java").Parse(`import jp.osscons.opensourcecobol.libcobj.common.*;
import jp.osscons.opensourcecobol.libcobj.call.*;
import jp.osscons.opensourcecobol.libcobj.data.*;
public class {{.Name}} implements CobolRunnable {
  public native void {{.Name}}({{range $i, $p := .Params}}{{if $i}}, {{end}}{{$p.Kind}} {{$p.VarName}}{{end}});
  @Override
  public int run(CobolDataStorage... argStorages) {
    return 0;
  }
  @Override
  public void cancel() {
  }
  @Override
  public boolean isActive() {
    return false;
  }
}
`))

var cTemplate = template.Must(template.New("c").Parse(`#include "{{.Name}}.h"
JNIEXPORT void JNICALL Java_{{.Name}}_{{.Name}}
(JNIEnv *env , jobject object{{range .Params}}, {{.Kind.JNIName}} {{.VarName}}{{end}})
{
  // not implemented
}
`))

// The generated program prints a descriptor document that LoadYAML reads,
// with type_size filled in by the C compiler.
var cInfoTemplate = template.Must(template.New("cinfo").Funcs(template.FuncMap{
	"sizeofType": func(p Param) string {
		return p.TypeName + strings.Repeat("*", p.PointerDepth)
	},
}).Parse(`#include <stdio.h>
int main() {
  printf("functions:\n");
{{range .}}  printf("  - func_name: {{.Name}}\n");
  printf("    return_type: {{.ReturnType}}\n");
  printf("    parameters:\n");
{{range .Params}}  printf("      - var_name: {{.VarName}}\n");
  printf("        type_name: {{.TypeName}}\n");
  printf("        pointer_depth: {{.PointerDepth}}\n");
  printf("        type_size: %lu\n", sizeof({{sizeofType .}}));
{{end}}{{end}}  return 0;
}
`))

// WriteJava writes the Java class declaring fn as a native method.
func WriteJava(w io.Writer, fn Function) error {
	if err := javaTemplate.Execute(w, fn); err != nil {
		return fmt.Errorf("glue: java source for %s: %w", fn.Name, err)
	}
	return nil
}

// WriteC writes the JNI stub implementing the native method of fn.
func WriteC(w io.Writer, fn Function) error {
	if err := cTemplate.Execute(w, fn); err != nil {
		return fmt.Errorf("glue: c source for %s: %w", fn.Name, err)
	}
	return nil
}

// WriteCInfo writes a C program that prints the descriptor document for fns.
func WriteCInfo(w io.Writer, fns []Function) error {
	if err := cInfoTemplate.Execute(w, fns); err != nil {
		return fmt.Errorf("glue: c info source: %w", err)
	}
	return nil
}

// WriteSources creates <name>.java and <name>.c in dir for every function.
func WriteSources(dir string, fns []Function) error {
	for _, fn := range fns {
		if err := writeFile(filepath.Join(dir, fn.Name+".java"), func(w io.Writer) error { return WriteJava(w, fn) }); err != nil {
			return err
		}
		if err := writeFile(filepath.Join(dir, fn.Name+".c"), func(w io.Writer) error { return WriteC(w, fn) }); err != nil {
			return err
		}
		Logger().Debug("glue sources written", zap.String("func", fn.Name), zap.String("dir", dir))
	}
	return nil
}

func writeFile(path string, render func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("glue: unable to write file %s: %w", path, err)
	}
	if err := render(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("glue: unable to write file %s: %w", path, err)
	}
	return nil
}
