package completion

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/showcase-cli/internal/cmd/cmdutil"
	"github.com/open-cli-collective/showcase-cli/internal/store"
)

// AppIDs completes the first positional argument with app ids from the
// configured catalog.
func AppIDs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	s, _, err := cmdutil.OpenStore(ctx, cmdutil.GlobalFlags(cmd).ConfigFile())
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveError
	}
	defer func() { _ = s.Close() }()

	return MatchAppIDs(ctx, s, toComplete), cobra.ShellCompDirectiveNoFileComp
}

// MatchAppIDs returns "id\tname" completions for apps whose id starts with prefix.
func MatchAppIDs(ctx context.Context, s store.Store, prefix string) []string {
	apps, err := s.List(ctx)
	if err != nil {
		return nil
	}

	var ids []string
	for _, app := range apps {
		if strings.HasPrefix(app.ID, prefix) {
			ids = append(ids, app.ID+"\t"+app.Name)
		}
	}
	return ids
}
