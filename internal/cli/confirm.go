package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// confirmPrompt asks the user to confirm a destructive action on stdin.
// --force approves everything without asking.
func confirmPrompt(prompt string) bool {
	if forceFlag {
		return true
	}

	fmt.Printf("%s [y/N]: ", prompt)

	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	response = strings.TrimSpace(strings.ToLower(response))

	return response == "y" || response == "yes"
}
