package web

import "net/http"

// handleShell serves the generator interface.
func (s *Server) handleShell(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	w.Write([]byte(shellHTML))
}

const shellHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>creAI - Component Generator</title>
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; background: #0a0e1a; color: #e2e8f0; }
        header.topbar { display: flex; justify-content: space-between; align-items: center; padding: 16px 24px; border-bottom: 1px solid #1e293b; }
        .brand { font-weight: bold; font-size: 1.2em; }
        .brand .tag { background: #3b82f6; color: white; font-size: 0.6em; padding: 2px 6px; border-radius: 4px; margin-left: 6px; vertical-align: middle; }
        main { max-width: 860px; margin: 0 auto; padding: 40px 24px; }
        h1 { margin-bottom: 24px; }
        .panel { background: linear-gradient(135deg, #1e293b 0%, #334155 100%); border: 1px solid #475569; border-radius: 12px; padding: 20px; margin-bottom: 24px; }
        textarea { width: 100%; min-height: 110px; background: #1e293b; border: 1px solid #475569; border-radius: 8px; padding: 14px; color: #e2e8f0; font-family: inherit; resize: vertical; }
        textarea:focus { outline: none; border-color: #60a5fa; }
        .row { display: flex; justify-content: space-between; align-items: center; margin-top: 14px; }
        .toggle button { background: #1e293b; color: #94a3b8; border: 1px solid #475569; padding: 8px 16px; cursor: pointer; }
        .toggle button:first-child { border-radius: 8px 0 0 8px; }
        .toggle button:last-child { border-radius: 0 8px 8px 0; }
        .toggle button.active { background: #3b82f6; color: white; border-color: #3b82f6; }
        .primary { background: linear-gradient(135deg, #3b82f6 0%, #1d4ed8 100%); color: white; border: none; padding: 10px 22px; border-radius: 8px; font-weight: bold; cursor: pointer; }
        .primary:disabled { opacity: 0.5; cursor: not-allowed; }
        .ghost { background: none; border: 1px solid #475569; color: #e2e8f0; padding: 8px 16px; border-radius: 8px; cursor: pointer; }
        .shortcuts { display: grid; grid-template-columns: repeat(auto-fill, minmax(180px, 1fr)); gap: 10px; }
        .shortcut { background: #334155; border: 1px solid #475569; border-radius: 8px; padding: 10px 12px; cursor: pointer; text-align: left; color: #e2e8f0; }
        .shortcut:hover { background: #475569; }
        .error { color: #ef4444; font-size: 0.9em; margin-top: 10px; }
        .tabs { display: flex; gap: 6px; margin-bottom: 12px; }
        .tabs button { background: #1e293b; border: 1px solid #475569; color: #94a3b8; padding: 8px 18px; border-radius: 8px 8px 0 0; cursor: pointer; }
        .tabs button.active { background: #334155; color: #e2e8f0; }
        .preview-pane { background: white; color: #111; border-radius: 8px; padding: 24px; display: flex; justify-content: center; align-items: center; min-height: 200px; }
        .code-pane { background: #0f172a; border-radius: 8px; padding: 16px; font-family: monospace; font-size: 0.85em; white-space: pre-wrap; overflow-x: auto; min-height: 200px; }
        .muted { color: #64748b; }
        .description { color: #94a3b8; font-size: 0.95em; }
        select { background: #1e293b; color: #e2e8f0; border: 1px solid #475569; border-radius: 8px; padding: 8px; }
        .hidden { display: none; }
    </style>
</head>
<body>
    <header class="topbar">
        <div class="brand">creAI<span class="tag">ALPHA</span></div>
        <button class="ghost" onclick="location.reload()">New session</button>
    </header>

    <main>
        <!-- Input view -->
        <section id="input-view">
            <h1>What should we design?</h1>
            <div class="panel">
                <textarea id="prompt" placeholder="Describe design you need..."></textarea>
                <div class="row">
                    <div class="toggle">
                        <button id="platform-mobile" class="active" onclick="setPlatform('mobile')">📱 Mobile</button>
                        <button id="platform-web" onclick="setPlatform('web')">🖥️ Web</button>
                    </div>
                    <button id="generate-btn" class="primary" onclick="generate()">✨ Generate</button>
                </div>
                <div id="input-error" class="error"></div>
            </div>
            <div id="shortcuts" class="shortcuts"></div>
        </section>

        <!-- Result view -->
        <section id="result-view" class="hidden">
            <div class="row" style="margin-bottom: 16px;">
                <button class="ghost" onclick="backToInput()">← Back</button>
                <div>
                    <select id="export-lang"></select>
                    <button class="ghost" onclick="saveComponent()">Save Component</button>
                    <button class="ghost" onclick="copyCode()">Copy Code</button>
                </div>
            </div>

            <div id="description-panel" class="panel hidden">
                <h3>Component Description</h3>
                <p id="description" class="description"></p>
            </div>

            <div class="panel">
                <textarea id="modify-prompt" placeholder="Describe how you want to modify the component..." style="min-height: 80px;"></textarea>
                <div class="row">
                    <span></span>
                    <button id="modify-btn" class="primary" onclick="modify()">✨ Modify</button>
                </div>
                <div id="modify-error" class="error"></div>
            </div>

            <div class="tabs">
                <button id="tab-preview" class="active" onclick="selectTab('preview')">Preview</button>
                <button id="tab-code" onclick="selectTab('code')">Code</button>
            </div>
            <div id="preview-pane" class="preview-pane"><span class="muted">No preview available</span></div>
            <div id="code-pane" class="code-pane hidden"></div>
        </section>
    </main>

    <script>
        var platform = 'mobile';
        var record = {};
        var savedId = null;

        function setPlatform(p) {
            platform = p;
            document.getElementById('platform-mobile').classList.toggle('active', p === 'mobile');
            document.getElementById('platform-web').classList.toggle('active', p === 'web');
        }

        function selectTab(tab) {
            document.getElementById('tab-preview').classList.toggle('active', tab === 'preview');
            document.getElementById('tab-code').classList.toggle('active', tab === 'code');
            document.getElementById('preview-pane').classList.toggle('hidden', tab !== 'preview');
            document.getElementById('code-pane').classList.toggle('hidden', tab !== 'code');
        }

        function backToInput() {
            record = {};
            savedId = null;
            document.getElementById('result-view').classList.add('hidden');
            document.getElementById('input-view').classList.remove('hidden');
        }

        async function apiPost(path, body) {
            var resp = await fetch(path, {
                method: 'POST',
                headers: { 'Content-Type': 'application/json' },
                body: JSON.stringify(body)
            });
            var data = await resp.json();
            if (!resp.ok) {
                throw new Error(data.error || 'Error connecting to the service');
            }
            return data;
        }

        async function generate() {
            var prompt = document.getElementById('prompt').value;
            var errorEl = document.getElementById('input-error');
            if (!prompt.trim()) {
                errorEl.textContent = 'Please enter a description for your component.';
                return;
            }

            errorEl.textContent = '';
            var btn = document.getElementById('generate-btn');
            btn.disabled = true;
            btn.textContent = 'Generating...';

            try {
                record = await apiPost('/api/v1/generate', { prompt: prompt, platform: platform });
                showResult();
            } catch (err) {
                errorEl.textContent = err.message;
            } finally {
                btn.disabled = false;
                btn.textContent = '✨ Generate';
            }
        }

        async function modify() {
            var prompt = document.getElementById('modify-prompt').value;
            var errorEl = document.getElementById('modify-error');
            if (!prompt.trim()) {
                errorEl.textContent = 'Please enter a modification description';
                return;
            }

            errorEl.textContent = '';
            var btn = document.getElementById('modify-btn');
            btn.disabled = true;
            btn.textContent = 'Modifying...';

            try {
                record = await apiPost('/api/v1/modify', {
                    prompt: prompt,
                    code: record.component_code || ''
                });
                savedId = null;
                showResult();
                document.getElementById('modify-prompt').value = '';
            } catch (err) {
                errorEl.textContent = err.message;
            } finally {
                btn.disabled = false;
                btn.textContent = '✨ Modify';
            }
        }

        function showResult() {
            document.getElementById('input-view').classList.add('hidden');
            document.getElementById('result-view').classList.remove('hidden');

            var descPanel = document.getElementById('description-panel');
            if (record.visual_description) {
                descPanel.classList.remove('hidden');
                document.getElementById('description').textContent = record.visual_description;
            } else {
                descPanel.classList.add('hidden');
            }

            var preview = document.getElementById('preview-pane');
            if (record.preview_html) {
                preview.innerHTML = record.preview_html;
            } else {
                preview.innerHTML = '<span class="muted">No preview available</span>';
            }

            document.getElementById('code-pane').textContent =
                record.component_code || '// No code generated yet';
        }

        async function saveComponent() {
            try {
                var artifact = await apiPost('/api/v1/artifacts', {
                    prompt: document.getElementById('prompt').value,
                    platform: platform,
                    record: record
                });
                savedId = artifact.id;
            } catch (err) {
                document.getElementById('modify-error').textContent = err.message;
                return;
            }

            var lang = document.getElementById('export-lang').value;
            if (lang) {
                window.location = '/api/v1/artifacts/' + savedId + '/export?lang=' + lang;
            }
        }

        function copyCode() {
            navigator.clipboard.writeText(record.component_code || '');
        }

        async function loadShortcuts() {
            var resp = await fetch('/api/v1/templates');
            var data = await resp.json();
            var grid = document.getElementById('shortcuts');
            (data.shortcuts || []).forEach(function (s) {
                var btn = document.createElement('button');
                btn.className = 'shortcut';
                btn.textContent = s.icon + ' ' + s.label;
                btn.onclick = function () {
                    document.getElementById('prompt').value = s.prompt || s.label;
                };
                grid.appendChild(btn);
            });
        }

        async function loadLanguages() {
            var resp = await fetch('/api/v1/languages');
            var data = await resp.json();
            var select = document.getElementById('export-lang');
            (data.languages || []).forEach(function (l) {
                var opt = document.createElement('option');
                opt.value = l.id;
                opt.textContent = l.name;
                select.appendChild(opt);
            });
        }

        loadShortcuts();
        loadLanguages();
    </script>
</body>
</html>`
