package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"bankist/internal/dto"

	"github.com/google/subcommands"
)

// Commands lists the session commands in the order help shows them
var Commands = []subcommands.Command{
	&loginCmd{},
	&showCmd{},
	&transferCmd{},
	&loanCmd{},
	&closeCmd{},
	&sortCmd{},
}

// clientFrom extracts the client passed to Commander.Execute
func clientFrom(args []interface{}) *client {
	if len(args) == 0 {
		return nil
	}
	c, _ := args[0].(*client)
	return c
}

// report renders the outcome of a session event
func report(view *dto.ScreenResponse, err error) subcommands.ExitStatus {
	if err != nil {
		var apiErr *apiError
		if errors.As(err, &apiErr) {
			printMarkdown(fmt.Sprintf("> %s\n", apiErr.response.Error.Message))
			return subcommands.ExitFailure
		}
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(screenMarkdown(view))
	return subcommands.ExitSuccess
}

type loginCmd struct{}

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "log in with a user name and PIN" }
func (*loginCmd) Usage() string {
	return `bankist login <username> <pin>

  Makes the account current and shows its movements, balance and summary.
`
}
func (*loginCmd) SetFlags(*flag.FlagSet) {}

func (*loginCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	return report(clientFrom(args).post(ctx, "/login", dto.LoginRequest{UserName: f.Arg(0), PIN: f.Arg(1)}))
}

type showCmd struct{}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "show the current screen" }
func (*showCmd) Usage() string {
	return `bankist show

  Prints what the page currently displays.
`
}
func (*showCmd) SetFlags(*flag.FlagSet) {}

func (*showCmd) Execute(ctx context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	return report(clientFrom(args).screen(ctx))
}

type transferCmd struct{}

func (*transferCmd) Name() string     { return "transfer" }
func (*transferCmd) Synopsis() string { return "transfer money to another account" }
func (*transferCmd) Usage() string {
	return `bankist transfer <username> <amount>

  Moves amount from the current account to the named account.
`
}
func (*transferCmd) SetFlags(*flag.FlagSet) {}

func (*transferCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	return report(clientFrom(args).post(ctx, "/transfers", dto.TransferRequest{To: f.Arg(0), Amount: f.Arg(1)}))
}

type loanCmd struct{}

func (*loanCmd) Name() string     { return "loan" }
func (*loanCmd) Synopsis() string { return "request a loan" }
func (*loanCmd) Usage() string {
	return `bankist loan <amount>

  The loan is granted when some movement is at least 10% of amount.
`
}
func (*loanCmd) SetFlags(*flag.FlagSet) {}

func (*loanCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	return report(clientFrom(args).post(ctx, "/loans", dto.LoanRequest{Amount: f.Arg(0)}))
}

type closeCmd struct{}

func (*closeCmd) Name() string     { return "close" }
func (*closeCmd) Synopsis() string { return "close the current account" }
func (*closeCmd) Usage() string {
	return `bankist close <username> <pin>

  Removes the current account from the bank and logs out.
  Both values must match the account that is logged in.
`
}
func (*closeCmd) SetFlags(*flag.FlagSet) {}

func (*closeCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	return report(clientFrom(args).post(ctx, "/close", dto.CloseAccountRequest{UserName: f.Arg(0), PIN: f.Arg(1)}))
}

type sortCmd struct{}

func (*sortCmd) Name() string     { return "sort" }
func (*sortCmd) Synopsis() string { return "toggle sorting of the movements" }
func (*sortCmd) Usage() string {
	return `bankist sort
`
}
func (*sortCmd) SetFlags(*flag.FlagSet) {}

func (*sortCmd) Execute(ctx context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	return report(clientFrom(args).post(ctx, "/sort", nil))
}

type accountsCmd struct{}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "list the accounts of the bank" }
func (*accountsCmd) Usage() string {
	return `bankist accounts
`
}
func (*accountsCmd) SetFlags(*flag.FlagSet) {}

func (*accountsCmd) Execute(ctx context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	list, err := clientFrom(args).accounts(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(accountsMarkdown(list))
	return subcommands.ExitSuccess
}
