package cli

// entries.go implements the journal entry commands
//
//	journey list --filter title.equals=Retro --sort title,desc
//	journey create --title Retro --description "sprint 12"

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	"github.com/information-sharing-networks/journey/internal/journal"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	var filters, sorts []string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List journal entries",
		Long: `List the journal entries matching all the filters.

Filters take the form <field>.<operator>=<value>, e.g title.equals=Retro, id.greaterThan=10,
description.specified=false. Sort takes <field>[,<field>...][,asc|desc].`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			criteria, err := parseFilters(filters)
			if err != nil {
				return err
			}
			orders, err := journal.ParseSort(sorts)
			if err != nil {
				return err
			}

			entries, err := apiClient.List(cmd.Context(), criteria, orders)
			if err != nil {
				return err
			}
			appLogger.Debug("listed journal entries", slog.Int("count", len(entries)))
			return printJSON(cmd.OutOrStdout(), entries)
		},
	}

	cmd.Flags().StringArrayVarP(&filters, "filter", "f", nil, "filter <field>.<operator>=<value> (repeatable)")
	cmd.Flags().StringArrayVarP(&sorts, "sort", "s", nil, "sort order, e.g title,desc (repeatable)")
	return cmd
}

func newCountCmd() *cobra.Command {
	var filters []string

	cmd := &cobra.Command{
		Use:   "count",
		Short: "Count journal entries",
		Long:  `Count the journal entries matching all the filters (same syntax as list).`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			criteria, err := parseFilters(filters)
			if err != nil {
				return err
			}

			n, err := apiClient.Count(cmd.Context(), criteria)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), n)
			return err
		},
	}

	cmd.Flags().StringArrayVarP(&filters, "filter", "f", nil, "filter <field>.<operator>=<value> (repeatable)")
	return cmd
}

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a journal entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			entry, err := apiClient.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), entry)
		},
	}
}

func newCreateCmd() *cobra.Command {
	var title, description string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a journal entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dto := journal.EntryDTO{Title: &title}
			if cmd.Flags().Changed("description") {
				dto.Description = &description
			}

			created, err := apiClient.Create(cmd.Context(), dto)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), created)
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "entry title (required)")
	cmd.Flags().StringVarP(&description, "description", "d", "", "entry description")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func newUpdateCmd() *cobra.Command {
	var title, description string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace the title and description of a journal entry",
		Long: `Replace the title and description of a journal entry.

The description is cleared unless --description is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			dto := journal.EntryDTO{ID: &id, Title: &title}
			if cmd.Flags().Changed("description") {
				dto.Description = &description
			}

			updated, err := apiClient.Update(cmd.Context(), dto)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), updated)
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "entry title (required)")
	cmd.Flags().StringVarP(&description, "description", "d", "", "entry description")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a journal entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			if err := apiClient.Delete(cmd.Context(), id); err != nil {
				return err
			}
			appLogger.Info("journal entry deleted", slog.Int64("id", id))
			return nil
		},
	}
}

// parseFilters converts --filter flags to criteria, checking them before any request is sent.
func parseFilters(filters []string) (journal.Criteria, error) {
	query := url.Values{}
	for _, f := range filters {
		key, value, ok := strings.Cut(f, "=")
		if !ok || !strings.Contains(key, ".") {
			return journal.Criteria{}, fmt.Errorf("invalid filter %q: expected <field>.<operator>=<value>", f)
		}
		query.Add(key, value)
	}
	return journal.ParseCriteria(query)
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", s, err)
	}
	return id, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
