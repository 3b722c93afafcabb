// Command contentcrafty converts and manages generated article markup.
package main

import "github.com/adarshpam3/contentcrafty-sub000/cmd"

func main() {
	cmd.Execute()
}
